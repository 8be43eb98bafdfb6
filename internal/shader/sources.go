package shader

// sceneVertexSrc transforms interleaved position/normal/texcoord
// vertices and forwards world-space position, normal, and UV to the
// fragment stage.
const sceneVertexSrc = `
#version 330 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexCoord;

void main() {
    vec4 worldPos = model * vec4(inPosition, 1.0);
    fragPosition = worldPos.xyz;
    fragNormal   = mat3(transpose(inverse(model))) * inNormal;
    fragTexCoord = inTexCoord;
    gl_Position  = projection * view * worldPos;
}
`

// sceneFragmentSrc is a Phong shader with up to four point lights and
// one directional light. Texturing and lighting toggle independently:
// with lighting off the base colour passes through unmodified.
const sceneFragmentSrc = `
#version 330 core
in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexCoord;

out vec4 outColor;

struct Material {
    vec3  diffuseColor;
    vec3  specularColor;
    float shininess;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

#define MAX_POINT_LIGHTS 4

uniform vec4 objectColor;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec2 UVscale;
uniform vec3 viewPosition;

uniform sampler2D objectTexture;
uniform Material material;
uniform PointLight pointLights[MAX_POINT_LIGHTS];
uniform DirectionalLight directionalLight;

vec3 phong(vec3 lightAmbient, vec3 lightDiffuse, vec3 lightSpecular,
           vec3 lightDir, vec3 normal, vec3 viewDir, vec3 baseColor) {
    vec3 ambient = lightAmbient * baseColor * material.diffuseColor;

    float diff = max(dot(normal, lightDir), 0.0);
    vec3 diffuse = lightDiffuse * diff * baseColor * material.diffuseColor;

    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
    vec3 specular = lightSpecular * spec * material.specularColor;

    return ambient + diffuse + specular;
}

void main() {
    vec4 baseColor = objectColor;
    if (bUseTexture) {
        baseColor = texture(objectTexture, fragTexCoord * UVscale);
    }

    if (!bUseLighting) {
        outColor = baseColor;
        return;
    }

    vec3 normal  = normalize(fragNormal);
    vec3 viewDir = normalize(viewPosition - fragPosition);

    vec3 lit = vec3(0.0);
    for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
        if (!pointLights[i].bActive) {
            continue;
        }
        vec3 lightDir = normalize(pointLights[i].position - fragPosition);
        lit += phong(pointLights[i].ambient, pointLights[i].diffuse,
                     pointLights[i].specular, lightDir, normal, viewDir,
                     baseColor.rgb);
    }

    if (directionalLight.bActive) {
        vec3 lightDir = normalize(-directionalLight.direction);
        lit += phong(directionalLight.ambient, directionalLight.diffuse,
                     directionalLight.specular, lightDir, normal, viewDir,
                     baseColor.rgb);
    }

    outColor = vec4(lit, baseColor.a);
}
`
